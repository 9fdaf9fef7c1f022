package callback

import "github.com/stretchr/testify/mock"

// MatchMessage creates a custom matcher for message arguments in mocks
func MatchMessage(matcher func(Message) bool) interface{} {
	return mock.MatchedBy(matcher)
}

// MatchReceiver creates a custom matcher for receiver arguments in mocks
func MatchReceiver(matcher func(Receiver) bool) interface{} {
	return mock.MatchedBy(matcher)
}

// MatchForwardLog creates a custom matcher for forward log arguments in mocks
func MatchForwardLog(matcher func(ForwardLog) bool) interface{} {
	return mock.MatchedBy(matcher)
}
