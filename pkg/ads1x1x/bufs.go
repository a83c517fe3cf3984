package ads1x1x

import "sync"

var twoBytes = &sync.Pool{New: func() interface{} { return make([]byte, RegisterSize) }}

func get2Bytes() []byte {
	return twoBytes.Get().([]byte)
}

func put2Bytes(b []byte) {
	b[0], b[1] = 0, 0
	twoBytes.Put(b)
}
