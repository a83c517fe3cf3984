package i2cbus

import (
	reefi2c "github.com/reef-pi/rpi/i2c"

	"github.com/yunginnanet/ads1x1x/pkg/ads1x1x"
)

// reef-pi buses can be handed to the driver as is.
var (
	_ ads1x1x.Transport = reefi2c.Bus(nil)
	_ ads1x1x.Transport = (*Bus)(nil)
)
