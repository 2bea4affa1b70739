package system

// Key is a Linux input event key code.
type Key uint16

// Linux input-event-codes.h
const (
	KeyEsc Key = 1
	KeyF1  Key = 59
	KeyF2  Key = 60
	KeyF3  Key = 61
	KeyF4  Key = 62
	KeyF5  Key = 63
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}
