package model

import (
	"path"
	"strings"
)

// FileDescriptor identifies one discoverable source file in a repository
// tree. It is immutable once discovered; DownloadRef is used later to fetch
// the raw content.
type FileDescriptor struct {
	Path        string `json:"path" firestore:"Path"`
	SizeBytes   int64  `json:"size_bytes" firestore:"SizeBytes"`
	ContentHash string `json:"content_hash" firestore:"ContentHash"`
	Language    string `json:"language" firestore:"Language"`
	DownloadRef string `json:"download_ref" firestore:"DownloadRef"`
}

// RateLimitInfo is a snapshot of the remote API quota parsed from the most
// recent response headers. It is not persisted and is read fresh per request.
type RateLimitInfo struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	ResetAtMs int64 `json:"reset_at_ms"`
	Used      int   `json:"used"`
}

// RepoEntry is one entry of a directory listing on the code host.
type RepoEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"` // "file" or "dir"
	Size        int64  `json:"size"`
	SHA         string `json:"sha"`
	DownloadURL string `json:"download_url"`
}

func (x *RepoEntry) IsDir() bool {
	return x.Type == "dir"
}

// DiscoveryPolicy bounds the repository tree walk. The limits exist to keep
// API call volume and analysis spend in check on pathological or vendored
// trees, not for correctness.
type DiscoveryPolicy struct {
	MaxFileSize int64
	MaxDepth    int
	Languages   map[string]string
	SkipDirs    map[string]struct{}
}

const (
	defaultMaxFileSize = 1 << 20 // 1 MiB
	defaultMaxDepth    = 10
)

var defaultLanguages = map[string]string{
	".go":    "go",
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".py":    "python",
	".rb":    "ruby",
	".java":  "java",
	".kt":    "kotlin",
	".cs":    "csharp",
	".php":   "php",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".rs":    "rust",
	".swift": "swift",
	".scala": "scala",
	".pl":    "perl",
	".cob":   "cobol",
	".cbl":   "cobol",
	".f90":   "fortran",
	".vb":    "visualbasic",
}

var defaultSkipDirs = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	"target":       {},
	"out":          {},
	"bin":          {},
	"obj":          {},
	"coverage":     {},
	"__pycache__":  {},
	"venv":         {},
	"tmp":          {},
}

// DefaultDiscoveryPolicy returns the stock policy: 1 MiB size ceiling,
// recursion depth 10, the built-in language table and skip set.
func DefaultDiscoveryPolicy() *DiscoveryPolicy {
	return &DiscoveryPolicy{
		MaxFileSize: defaultMaxFileSize,
		MaxDepth:    defaultMaxDepth,
		Languages:   defaultLanguages,
		SkipDirs:    defaultSkipDirs,
	}
}

// LanguageOf returns the language for a file path, or empty string when the
// extension is not a recognized source-code extension.
func (x *DiscoveryPolicy) LanguageOf(filePath string) string {
	return x.Languages[strings.ToLower(path.Ext(filePath))]
}

// ShouldSkipDir reports whether a directory name is excluded from the walk.
// Dot directories are always excluded.
func (x *DiscoveryPolicy) ShouldSkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := x.SkipDirs[name]
	return ok
}
