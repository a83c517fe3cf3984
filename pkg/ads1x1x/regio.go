package ads1x1x

// LastConfig returns the config register as last written to the device.
func (adc *ADS1x1x) LastConfig() [RegisterSize]byte {
	adc.mu.RLock()
	b := adc.regLW[RegConfig]
	adc.mu.RUnlock()
	return b
}

// Registers returns the last data read from each register.
func (adc *ADS1x1x) Registers() map[byte][RegisterSize]byte {
	adc.mu.RLock()
	r := make(map[byte][RegisterSize]byte, NumRegisters)
	for reg, val := range adc.regLR {
		r[byte(reg)] = val
	}
	adc.mu.RUnlock()
	return r
}

// readRegister reads register [reg] into buf.
func (adc *ADS1x1x) readRegister(reg byte, buf []byte) error {
	if err := adc.bus.ReadFromReg(adc.addr, reg, buf); err != nil {
		return &TransportError{Op: "read", Addr: adc.addr, Reg: reg, Err: err}
	}
	copy(adc.regLR[reg][:], buf)
	adc.log.Trace().Uint8("slave", adc.addr).Uint8("reg", reg).Hex("data", buf).Msg("read register")
	return nil
}

// writeRegister writes buf to register [reg].
func (adc *ADS1x1x) writeRegister(reg byte, buf []byte) error {
	if err := adc.bus.WriteToReg(adc.addr, reg, buf); err != nil {
		return &TransportError{Op: "write", Addr: adc.addr, Reg: reg, Err: err}
	}
	copy(adc.regLW[reg][:], buf)
	adc.log.Trace().Uint8("slave", adc.addr).Uint8("reg", reg).Hex("data", buf).Msg("wrote register")
	return nil
}

// updateConfig does a read-modify-write of byte 0 of the config register.
// Byte 1 is written back untouched. Caller must hold adc.mu.
func (adc *ADS1x1x) updateConfig(patch func(cfg byte) byte) error {
	buf := get2Bytes()
	defer put2Bytes(buf)

	if err := adc.readRegister(RegConfig, buf); err != nil {
		return err
	}

	buf[0] = patch(buf[0])

	return adc.writeRegister(RegConfig, buf)
}
