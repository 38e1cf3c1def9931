package layout

// Code is a USB HID keyboard usage code (Keyboard/Keypad usage page).
// Modifier keys occupy the range 0xE0-0xE7 and are reported in the boot
// report's modifier bitset rather than the key slots.
type Code uint8

// Keyboard usage codes (USB HID Usage Tables).
const (
	CodeNone        Code = 0x00
	CodeA           Code = 0x04
	CodeB           Code = 0x05
	CodeC           Code = 0x06
	CodeD           Code = 0x07
	CodeE           Code = 0x08
	CodeF           Code = 0x09
	CodeG           Code = 0x0A
	CodeH           Code = 0x0B
	CodeI           Code = 0x0C
	CodeJ           Code = 0x0D
	CodeK           Code = 0x0E
	CodeL           Code = 0x0F
	CodeM           Code = 0x10
	CodeN           Code = 0x11
	CodeO           Code = 0x12
	CodeP           Code = 0x13
	CodeQ           Code = 0x14
	CodeR           Code = 0x15
	CodeS           Code = 0x16
	CodeT           Code = 0x17
	CodeU           Code = 0x18
	CodeV           Code = 0x19
	CodeW           Code = 0x1A
	CodeX           Code = 0x1B
	CodeY           Code = 0x1C
	CodeZ           Code = 0x1D
	Code1           Code = 0x1E
	Code2           Code = 0x1F
	Code3           Code = 0x20
	Code4           Code = 0x21
	Code5           Code = 0x22
	Code6           Code = 0x23
	Code7           Code = 0x24
	Code8           Code = 0x25
	Code9           Code = 0x26
	Code0           Code = 0x27
	CodeEnter       Code = 0x28
	CodeEscape      Code = 0x29
	CodeBackspace   Code = 0x2A
	CodeTab         Code = 0x2B
	CodeSpace       Code = 0x2C
	CodeMinus       Code = 0x2D
	CodeEqual       Code = 0x2E
	CodeLeftBrace   Code = 0x2F
	CodeRightBrace  Code = 0x30
	CodeBackslash   Code = 0x31
	CodeSemicolon   Code = 0x33
	CodeQuote       Code = 0x34
	CodeGrave       Code = 0x35
	CodeComma       Code = 0x36
	CodeDot         Code = 0x37
	CodeSlash       Code = 0x38
	CodeCapsLock    Code = 0x39
	CodeF1          Code = 0x3A
	CodeF2          Code = 0x3B
	CodeF3          Code = 0x3C
	CodeF4          Code = 0x3D
	CodeF5          Code = 0x3E
	CodeF6          Code = 0x3F
	CodeF7          Code = 0x40
	CodeF8          Code = 0x41
	CodeF9          Code = 0x42
	CodeF10         Code = 0x43
	CodeF11         Code = 0x44
	CodeF12         Code = 0x45
	CodePrintScreen Code = 0x46
	CodeScrollLock  Code = 0x47
	CodePause       Code = 0x48
	CodeInsert      Code = 0x49
	CodeHome        Code = 0x4A
	CodePageUp      Code = 0x4B
	CodeDelete      Code = 0x4C
	CodeEnd         Code = 0x4D
	CodePageDown    Code = 0x4E
	CodeRight       Code = 0x4F
	CodeLeft        Code = 0x50
	CodeDown        Code = 0x51
	CodeUp          Code = 0x52
)

// Modifier usage codes.
const (
	CodeLCtrl  Code = 0xE0
	CodeLShift Code = 0xE1
	CodeLAlt   Code = 0xE2
	CodeLGUI   Code = 0xE3
	CodeRCtrl  Code = 0xE4
	CodeRShift Code = 0xE5
	CodeRAlt   Code = 0xE6
	CodeRGUI   Code = 0xE7
)

// Media navigation codes. These sit outside the boot keyboard range but are
// understood by common hosts when reported in a key slot.
const (
	CodeMediaBack    Code = 0xF1
	CodeMediaForward Code = 0xF2
)

// IsModifier reports whether the code is a modifier key.
func (c Code) IsModifier() bool {
	return c >= CodeLCtrl && c <= CodeRGUI
}

// ModifierBit returns the code's bit in the boot report modifier byte, or 0
// if the code is not a modifier.
func (c Code) ModifierBit() uint8 {
	if !c.IsModifier() {
		return 0
	}
	return 1 << (c - CodeLCtrl)
}
