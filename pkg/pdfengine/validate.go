package pdfengine

import "fmt"

// Precondition checks over caller-supplied arguments. All of them are pure
// and run to completion before any lock acquisition or native call, so a
// validation failure never consumes native resources.

func validateSource(name string, s Source) error {
	if s.isZero() {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, name)
	}
	return nil
}

func validatePositive(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be greater than zero (got %d)", ErrInvalidArgument, name, v)
	}
	return nil
}

func validateNonNegative(name string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative (got %d)", ErrInvalidArgument, name, v)
	}
	return nil
}

// validateOrdered enforces a <= b; equal bounds are accepted.
func validateOrdered(nameA, nameB string, a, b int) error {
	if a > b {
		return fmt.Errorf("%w: %s (%d) must not be greater than %s (%d)", ErrInvalidArgument, nameA, a, nameB, b)
	}
	return nil
}

func validateImages(images []ImageDescriptor) error {
	if len(images) == 0 {
		return fmt.Errorf("%w: images must not be empty", ErrInvalidArgument)
	}
	for i, img := range images {
		if len(img.Data) == 0 {
			return fmt.Errorf("%w: images[%d].Data must not be empty", ErrInvalidArgument, i)
		}
		if err := validateNonNegative(fmt.Sprintf("images[%d].Width", i), img.Width); err != nil {
			return err
		}
		if err := validateNonNegative(fmt.Sprintf("images[%d].Height", i), img.Height); err != nil {
			return err
		}
	}
	return nil
}
