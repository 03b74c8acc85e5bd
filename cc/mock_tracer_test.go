package cc

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockTracer is a hand-written, mockgen-shaped mock of the Tracer
// interface, used to assert the collector's own call discipline (how many
// times Pass B and Pass C call a surviving header's Trace in one
// CollectCycles call) rather than to build real graphs — its Trace body
// only records the call, it never invokes the Visitor it's handed.
type MockTracer struct {
	ctrl     *gomock.Controller
	recorder *MockTracerMockRecorder
}

// MockTracerMockRecorder is the mock recorder for MockTracer.
type MockTracerMockRecorder struct {
	mock *MockTracer
}

// NewMockTracer creates a new mock instance.
func NewMockTracer(ctrl *gomock.Controller) *MockTracer {
	mock := &MockTracer{ctrl: ctrl}
	mock.recorder = &MockTracerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTracer) EXPECT() *MockTracerMockRecorder {
	return m.recorder
}

// IsTypeTracked mocks base method.
func (m *MockTracer) IsTypeTracked() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsTypeTracked")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsTypeTracked indicates an expected call of IsTypeTracked.
func (mr *MockTracerMockRecorder) IsTypeTracked() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsTypeTracked", reflect.TypeOf((*MockTracer)(nil).IsTypeTracked))
}

// Trace mocks base method.
func (m *MockTracer) Trace(v Visitor) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Trace", v)
}

// Trace indicates an expected call of Trace.
func (mr *MockTracerMockRecorder) Trace(v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Trace", reflect.TypeOf((*MockTracer)(nil).Trace), v)
}
