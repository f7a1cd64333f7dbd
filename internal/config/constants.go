// Package config holds Dieter's ambient constants and the optional
// per-directory project configuration file.
package config

const SourceFileExt = ".dtr"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".dtr", ".dieter"}

// HasSourceExt reports whether path ends with a recognized source
// extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// TrimSourceExt removes any recognized source extension from name.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// IsTestMode indicates the program is running under its own test
// suite's fixtures, rather than a file the user passed on the CLI.
var IsTestMode = false
