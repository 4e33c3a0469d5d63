package eq

import "errors"

var (
	// ErrBandCount is returned when a Params value has a different number of
	// bands than the engine it is applied to.
	ErrBandCount = errors.New("band count mismatch")

	// ErrChannelCount is returned by Process when the number of buffers does
	// not match the processor's channel count.
	ErrChannelCount = errors.New("channel count mismatch")

	// ErrBufferLength is returned by Process when channel buffers differ in length.
	ErrBufferLength = errors.New("channel buffers differ in length")

	// ErrUnknownKernel is returned when WithKernel names no registered kernel.
	ErrUnknownKernel = errors.New("unknown kernel")
)
