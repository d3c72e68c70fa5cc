package game

import "fmt"

// ConfigError reports an unusable board configuration: a non-positive side
// length or mine count, or a mine count which leaves no safe cell.
type ConfigError struct {
	SideLength int
	MineCount  int
	Reason     string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("invalid board configuration (side %d, mines %d): %s", err.SideLength, err.MineCount, err.Reason)
}

// IndexError reports a cell index outside [0, Size)
type IndexError struct {
	Index int
	Size  int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("cell index %d out of range [0, %d)", err.Index, err.Size)
}

func validateConfig(sideLength, mineCount int) error {
	switch {
	case sideLength <= 0:
		return &ConfigError{sideLength, mineCount, "side length must be positive"}
	case mineCount <= 0:
		return &ConfigError{sideLength, mineCount, "mine count must be positive"}
	case mineCount >= sideLength*sideLength:
		return &ConfigError{sideLength, mineCount, "mine count must be less than the number of cells"}
	}
	return nil
}
