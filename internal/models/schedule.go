package models

// TemperatureBreakpoint marks the ambient temperature from a given minute of the day onward.
type TemperatureBreakpoint struct {
	Time  int     `json:"time"`   // minute offset of day, 0..1439
	TempC float64 `json:"temp_c"` // °C
}

// TemperatureSample is one entry of the dense series derived from a schedule.
type TemperatureSample struct {
	Time  int     `json:"time"`
	TempC float64 `json:"temp_c"`
}
