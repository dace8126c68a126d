// core/stkfile/sensor.go
package stkfile

import (
	"io"
	"time"
)

const sensorPointingSection = "SensorPointing"

// WriteSensorPointing writes a sensor pointing (.sp) document to w. Sensor
// pointing shares the attitude representations and additionally accepts
// AzElAngles.
func WriteSensorPointing(w io.Writer, s FileSpec, times []time.Time, rows [][]float64) ([]RowWarning, error) {
	d, warns, err := renderAttitude(sensorPointingSection, s, times, rows)
	if err != nil {
		return nil, err
	}
	return warns, d.emit(w)
}

// WriteSensorPointingFile is the path form of WriteSensorPointing.
func WriteSensorPointingFile(path string, s FileSpec, times []time.Time, rows [][]float64) ([]RowWarning, error) {
	d, warns, err := renderAttitude(sensorPointingSection, s, times, rows)
	if err != nil {
		return nil, err
	}
	return warns, d.emitFile(path)
}
