package app

import "strings"

// SplitIdentifier splits repository identifier "owner/name" into its two non-empty segments.
func SplitIdentifier(identifier string) (owner string, name string, err error) {
	parts := strings.Split(identifier, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", IdentifierFormatError("repository name %q could not be parsed, want owner/name", identifier)
	}

	return parts[0], parts[1], nil
}

// ValidateOrganizationName checks if org can name an organization.
// Repository identifiers always contain "/", organization names never do.
func ValidateOrganizationName(org string) error {
	if org == "" {
		return IdentifierFormatError("organization name cannot be empty")
	}
	if strings.Contains(org, "/") {
		return IdentifierFormatError("organization name %q cannot contain '/'", org)
	}

	return nil
}
