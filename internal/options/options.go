// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `arg:"positional" usage:"CHIP-8 program file"`
	PNG   string `flag:"png" usage:"write the final display as PNG image to this file"`
}

// Flags contains behavior options.
type Flags struct {
	Ticks uint   `flag:"ticks" usage:"maximum number of ticks to run, 0 runs until interrupted" default:"600"`
	Hz    uint   `flag:"hz" usage:"ticks per second, 0 runs unthrottled" default:"0"`
	Keys  string `flag:"keys" usage:"comma separated hex keys held down during the run, e.g. 1,a,f"`
	Idle  bool   `flag:"idle" usage:"stop when the program jumps to itself"`
	Debug bool   `flag:"debug" usage:"enable debug logging"`
	Quiet bool   `flag:"q" usage:"quiet mode"`
}

// QuirkFlags contains interpreter compatibility options.
type QuirkFlags struct {
	Edge      string `flag:"edge" usage:"sprite edge handling: wrap, clip" default:"wrap"`
	Index     string `flag:"index" usage:"index change after Fx55/Fx65: unchanged, x, x+1" default:"unchanged"`
	KeyWait   string `flag:"keywait" usage:"Fx0A completion: release, press" default:"release"`
	NoVFReset bool   `flag:"no-vf-reset" usage:"do not clear VF after 8xy1, 8xy2 and 8xy3"`
	ShiftX    bool   `flag:"shift-x" usage:"8xy6 and 8xyE shift VX instead of VY"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Scale   int  `flag:"scale" usage:"pixel scale of the PNG image" default:"10"`
	ASCII   bool `flag:"ascii" usage:"print the display as ASCII even on a terminal"`
	NoPrint bool `flag:"noprint" usage:"do not print the final display"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	QuirkFlags
	OutputFlags

	HeldKeys []uint8 // parsed Keys
}
