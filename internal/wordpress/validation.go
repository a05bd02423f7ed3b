package wordpress

// validateID rejects non-positive identifiers with the kind's fixed error.
func validateID(id int, kind ResourceKind) (int, error) {
	if id <= 0 {
		return 0, &InvalidIDError{Kind: kind}
	}
	return id, nil
}

// ValidatePostID validates a post ID is a positive integer.
func ValidatePostID(id int) (int, error) {
	return validateID(id, ResourcePost)
}

// ValidatePageID validates a page ID is a positive integer.
func ValidatePageID(id int) (int, error) {
	return validateID(id, ResourcePage)
}

// ValidateMediaID validates a media ID is a positive integer.
func ValidateMediaID(id int) (int, error) {
	return validateID(id, ResourceMedia)
}

// ValidateCommentID validates a comment ID is a positive integer.
func ValidateCommentID(id int) (int, error) {
	return validateID(id, ResourceComment)
}

// ClampPerPage bounds the per_page query parameter to the REST API maximum.
func ClampPerPage(perPage int) int {
	if perPage < 1 {
		return 10
	}
	if perPage > 100 {
		return 100
	}
	return perPage
}
