package chip8

// Keypad is the state of the 16 key hex keypad, indexed 0x0-0xF.
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// The input side owns it and writes it between cycles. The VM only reads it.
type Keypad struct {
	keys [KeyCount]bool
}

// Set records whether key k is held down. Keys outside 0x0-0xF are ignored.
func (k *Keypad) Set(key int, pressed bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	k.keys[key] = pressed
}

// Press marks key as held down.
func (k *Keypad) Press(key int) { k.Set(key, true) }

// Release marks key as up.
func (k *Keypad) Release(key int) { k.Set(key, false) }

// ReleaseAll marks every key as up.
func (k *Keypad) ReleaseAll() {
	k.keys = [KeyCount]bool{}
}

// IsPressed reports whether key k is held down.
func (k *Keypad) IsPressed(key int) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return k.keys[key]
}

// firstPressed returns the lowest pressed key.
func (k *Keypad) firstPressed() (int, bool) {
	for key, pressed := range k.keys {
		if pressed {
			return key, true
		}
	}
	return 0, false
}
