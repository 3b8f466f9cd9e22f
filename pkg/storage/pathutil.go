package storage

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeFileChars are characters not allowed in file names on common
// filesystems.
var unsafeFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// ValidatePathWithinWorkDir checks if a given path is within the allowed work directory.
// This prevents item names such as "../../etc" from escaping the output directory.
//
// Parameters:
//   - filePath: The path to validate (can be relative or absolute)
//   - workDir: The allowed work directory
//
// Returns:
//   - absPath: The resolved absolute path (only valid if err is nil)
//   - err: An error if the path is outside the work directory or invalid
func ValidatePathWithinWorkDir(filePath, workDir string) (absPath string, err error) {
	targetPath := filePath
	if !filepath.IsAbs(targetPath) {
		targetPath = filepath.Join(workDir, targetPath)
	}

	absPath, err = filepath.Abs(targetPath)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve work directory: %w", err)
	}

	// Trailing separator so /out-evil does not match /out
	if !strings.HasSuffix(absWorkDir, string(filepath.Separator)) {
		absWorkDir += string(filepath.Separator)
	}

	if absPath != strings.TrimSuffix(absWorkDir, string(filepath.Separator)) &&
		!strings.HasPrefix(absPath, absWorkDir) {
		return "", fmt.Errorf("access denied: path outside output directory")
	}

	return absPath, nil
}

// SafeFileName turns an item name into a file or directory name.
func SafeFileName(name string) string {
	name = unsafeFileChars.ReplaceAllString(name, "_")
	name = strings.Trim(strings.TrimSpace(name), ".")
	if name == "" {
		return "untitled"
	}
	return name
}
