// Package errors provides structured error handling with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Character errors
	CodeCharacterNotFound Code = "CHARACTER_NOT_FOUND"

	// Story errors
	CodeStoryNotFound        Code = "STORY_NOT_FOUND"
	CodeStoryTitleEmpty      Code = "STORY_TITLE_EMPTY"
	CodeStoryContentEmpty    Code = "STORY_CONTENT_EMPTY"
	CodeStoryTitleUnusable   Code = "STORY_TITLE_UNUSABLE"
	CodeStoryFilenameInvalid Code = "STORY_FILENAME_INVALID"

	// Storage errors
	CodeStorageFailure Code = "STORAGE_FAILURE"
)

// Kind groups codes into the failure categories surfaced to callers.
type Kind string

const (
	KindUnknown    Kind = "unknown"
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindStorage    Kind = "storage"
)

// Kind returns the failure category for the code.
func (c Code) Kind() Kind {
	switch c {
	case CodeCharacterNotFound, CodeStoryNotFound:
		return KindNotFound
	case CodeStoryTitleEmpty, CodeStoryContentEmpty, CodeStoryTitleUnusable, CodeStoryFilenameInvalid:
		return KindValidation
	case CodeStorageFailure:
		return KindStorage
	default:
		return KindUnknown
	}
}
