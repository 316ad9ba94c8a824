//go:build linux

package indicator

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealOutput drives an LED through the Linux GPIO character device.
type RealOutput struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// NewRealOutput requests the given BCM pin as an output, initially low.
func NewRealOutput(pin int) (*RealOutput, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request LED pin %d: %w", pin, err)
	}

	return &RealOutput{
		chip: chip,
		line: line,
	}, nil
}

// Set drives the LED high or low.
func (o *RealOutput) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	if err := o.line.SetValue(v); err != nil {
		return fmt.Errorf("set LED: %w", err)
	}
	return nil
}

// Close turns the LED off and releases the line.
func (o *RealOutput) Close() error {
	o.line.SetValue(0)
	if err := o.line.Close(); err != nil {
		o.chip.Close()
		return err
	}
	return o.chip.Close()
}
