package autoenc

// Error is a wrapper for specific types of errors for which there is no
// additional information necessary. These errors are defined as global
// variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrRegisterNilReturn = Error{"Function return is nil"}
	ErrNotFinalized      = Error{"Stack has not been finalized"}
	ErrFinalized         = Error{"Stack has already been finalized"}
	ErrUnitNotTrained    = Error{"Unit has no trained parameters"}
	ErrNoHead            = Error{"Stack has no output layer or classifier"}
)

// NilArgError documents errors resulting from certain arguments provided to a
// function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError documents errors where the dimensions of provided data do
// not match the dimensions of the model.
type SizeMismatchError struct {
	Expected, Got int
	Description   string
}

func (err SizeMismatchError) Error() string {
	return "Size mismatch for " + err.Description
}
