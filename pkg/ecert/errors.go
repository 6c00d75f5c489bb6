package ecert

import (
	"errors"
	"fmt"
)

var (
	ErrDecode             = errors.New("template is not a well-formed PDF document")
	ErrMultiPage          = errors.New("template must contain exactly one page")
	ErrDimensionMismatch  = errors.New("template page size is not A4")
	ErrHeaderMismatch     = errors.New("recipient list header must be \"name\"")
	ErrEmptyRecipientList = errors.New("recipient list is empty")
	ErrMeasurement        = errors.New("text cannot be measured with the selected font")
	ErrPlaceholder        = errors.New("text contains a stamp placeholder")
	ErrEmptySelection     = errors.New("template or recipient list not supplied")
)

type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDecode, e.Err)
}

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func (e *DecodeError) Unwrap() error { return e.Err }

type MultiPageError struct {
	Pages int
}

func (e *MultiPageError) Error() string {
	return fmt.Sprintf("%v, got %d", ErrMultiPage, e.Pages)
}

func (e *MultiPageError) Is(target error) bool { return target == ErrMultiPage }

type Axis string

const (
	AxisWidth  Axis = "width"
	AxisHeight Axis = "height"
)

// DimensionMismatchError reports the first axis that fell outside its tolerance band.
type DimensionMismatchError struct {
	Axis   Axis
	Width  float64
	Height float64
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%v: %s out of range (page is %.2f x %.2f pt)", ErrDimensionMismatch, e.Axis, e.Width, e.Height)
}

func (e *DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }

type HeaderMismatchError struct {
	Got string
}

func (e *HeaderMismatchError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("%v, header row is missing", ErrHeaderMismatch)
	}
	return fmt.Sprintf("%v, got %q", ErrHeaderMismatch, e.Got)
}

func (e *HeaderMismatchError) Is(target error) bool { return target == ErrHeaderMismatch }

type MeasurementError struct {
	Text string
	Rune rune
	Font FontID
}

func (e *MeasurementError) Error() string {
	return fmt.Sprintf("%v: %q in %q is not encodable in %s", ErrMeasurement, e.Rune, e.Text, e.Font)
}

func (e *MeasurementError) Is(target error) bool { return target == ErrMeasurement }

// PlaceholderError reports a percent sequence that the stamp would replace with a page
// number, page count, timestamp or version.
type PlaceholderError struct {
	Text     string
	Sequence string
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("%v: %q in %q cannot be drawn literally", ErrPlaceholder, e.Sequence, e.Text)
}

func (e *PlaceholderError) Is(target error) bool { return target == ErrPlaceholder }

// RenderError attaches the recipient name to a failed render.
type RenderError struct {
	Name string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render certificate for %q: %v", e.Name, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
