package fintrack

// LoadError reports that the persisted store exists but could not be read or
// parsed. The ledger recovers by resetting to an empty in-memory sequence;
// nothing about a LoadError is fatal.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return "could not load ledger: " + e.Err.Error() }
func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports that the persisted store could not be rewritten. The
// in-memory sequence is unchanged and remains the source of truth; a later
// successful persist recovers all data.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return "could not save ledger: " + e.Err.Error() }
func (e *SaveError) Unwrap() error { return e.Err }
