package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// Entry validation errors. Their messages are part of the HTTP contract.
var (
	// ErrDuplicateName is returned when an entry name is already taken by any entry.
	ErrDuplicateName = zerr.New("entry names must be unique")

	// ErrInvalidCookTime is returned when an ingredient has a negative cook time.
	ErrInvalidCookTime = zerr.New("cookTime can only be greater than or equal to 0")

	// ErrDuplicateRequiredItem is returned when a recipe lists the same item name twice.
	ErrDuplicateRequiredItem = zerr.New("recipe requiredItems can only have one element per name")

	// ErrUnknownEntryType is returned when the entry type is neither recipe nor ingredient.
	ErrUnknownEntryType = zerr.New(`type can only be "recipe" or "ingredient"`)

	// ErrInvalidQuantity is returned when a required item quantity is not positive.
	ErrInvalidQuantity = zerr.New("requiredItems quantity must be greater than 0")

	// ErrEmptyName is returned when an entry or required item has no name.
	ErrEmptyName = zerr.New("entry name must not be empty")
)

// Resolution errors.
var (
	// ErrEntryNotFound is returned when the requested root entry does not exist.
	ErrEntryNotFound = zerr.New("entry not found")

	// ErrNotARecipe is returned when the requested root entry is an ingredient.
	ErrNotARecipe = zerr.New("entry is not a recipe")

	// ErrUnknownReference is returned when a recipe references a name that is not stored.
	ErrUnknownReference = zerr.New("recipe references an unknown entry")

	// ErrCycleDetected is returned when a recipe transitively requires itself.
	ErrCycleDetected = zerr.New("cycle detected")
)

var (
	// ErrInvalidRecipeName is returned when normalising handwriting leaves nothing behind.
	ErrInvalidRecipeName = zerr.New("Invalid recipe name")

	// ErrInvalidRecipes is returned by the check command when any recipe fails to resolve.
	ErrInvalidRecipes = zerr.New("one or more recipes cannot be resolved")
)

// Configuration errors.
var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrSeedReadFailed is returned when a seed file cannot be read.
	ErrSeedReadFailed = zerr.New("failed to read seed file")

	// ErrSeedParseFailed is returned when a seed file is not valid YAML.
	ErrSeedParseFailed = zerr.New("failed to parse seed file")

	// ErrSeedNotFound is returned when a seed glob pattern matches no file.
	ErrSeedNotFound = zerr.New("no seed file matches pattern")

	// ErrInvalidLogFormat is returned when the log format is neither pretty nor json.
	ErrInvalidLogFormat = zerr.New(`log format can only be "pretty" or "json"`)

	// ErrInvalidShutdownTimeout is returned when the shutdown timeout is not a valid duration.
	ErrInvalidShutdownTimeout = zerr.New("invalid server shutdownTimeout")
)

// entryErrors are the creation failures whose messages are shown to clients.
var entryErrors = []error{
	ErrDuplicateName,
	ErrUnknownEntryType,
	ErrInvalidCookTime,
	ErrDuplicateRequiredItem,
	ErrInvalidQuantity,
	ErrEmptyName,
}

// EntryErrorMessage returns the client-facing message of the creation failure
// wrapped by err, or false if err is not a creation failure.
func EntryErrorMessage(err error) (string, bool) {
	for _, sentinel := range entryErrors {
		if errors.Is(err, sentinel) {
			return sentinel.Error(), true
		}
	}
	return "", false
}
