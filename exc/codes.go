package exc

const (
	CodeUnknownFatal                  = "S0000"
	CodeFileNotFound                  = "S0001"
	CodeUnsuportedFileSystemOperation = "S0002"
	CodePermissionDenied              = "S0003"
	CodeUnexpectedEOF                 = "S0004"
	CodeUnexpectedToken               = "S0005"
	CodeUnknownEnumLiteral            = "S0006"
	CodeUnknownGlobalSection          = "S0007"
	CodeInvalidIdentifier             = "S0008"
)

// IsFileSystemCode reports whether a code belongs to the file-access error
// family rather than the grammar family.
func IsFileSystemCode(code string) bool {
	switch code {
	case CodeFileNotFound, CodeUnsuportedFileSystemOperation, CodePermissionDenied:
		return true
	}
	return false
}
