package errors

// ZeroDuration is returned when hours, minutes and seconds add up to nothing
func ZeroDuration() *CLIError {
	return NewConfigError(
		"Total duration must be greater than 0 seconds.",
		"Specify desired time with -H/--hours, -M/--minutes and/or -S/--seconds arguments.",
	)
}

// InvalidFlags wraps a flag parsing failure
func InvalidFlags(err error) *CLIError {
	cliErr := Wrap(err, Argument, "Run 'labt --help' to see the accepted flags.")
	if cliErr == nil {
		return nil
	}
	cliErr.Usage = "labt [-H hours] [-M minutes] [-S seconds] [flags]"
	return cliErr
}

// InvalidConfig wraps a configuration that failed validation for a reason
// other than a zero duration
func InvalidConfig(err error) *CLIError {
	return WrapWithMessage(err, Configuration, "invalid configuration",
		"Check the LABT_* environment variables and the command-line flags.")
}

// AudioUnavailable wraps a failure to open the audio output device
func AudioUnavailable(err error) *CLIError {
	return WrapWithMessage(err, Prerequisite, "cannot open audio output",
		"Check that a sound device is available, or pass -s/--disable-sound.")
}

// SignalHandlerUnavailable is returned when the interrupt handler cannot be installed
func SignalHandlerUnavailable(err error) *CLIError {
	return WrapWithMessage(err, Runtime, "cannot install interrupt handler",
		"Please report this as a bug.")
}
