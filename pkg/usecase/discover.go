package usecase

import (
	"context"
	"log/slog"

	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/utils/logging"
)

// DiscoverFiles walks the repository tree and returns every eligible source
// file in listing order. A failed subtree listing is logged and skipped so
// one bad directory never fails the whole discovery; only a failure to list
// the repository root is returned as an error.
func (x *UseCase) DiscoverFiles(ctx context.Context, repoRef, branch string) ([]*model.FileDescriptor, error) {
	return x.discoverDir(ctx, repoRef, branch, "", 0)
}

func (x *UseCase) discoverDir(ctx context.Context, repoRef, branch, dirPath string, depth int) ([]*model.FileDescriptor, error) {
	entries, _, err := x.clients.CodeHost().ListDirectory(ctx, repoRef, branch, dirPath)
	if err != nil {
		return nil, err
	}

	var files []*model.FileDescriptor
	for _, entry := range entries {
		if entry.IsDir() {
			if x.policy.ShouldSkipDir(entry.Name) {
				continue
			}
			if depth >= x.policy.MaxDepth {
				logging.From(ctx).Debug("recursion ceiling reached, skipping directory",
					slog.String("path", entry.Path),
					slog.Int("depth", depth),
				)
				continue
			}

			sub, err := x.discoverDir(ctx, repoRef, branch, entry.Path, depth+1)
			if err != nil {
				logging.From(ctx).Warn("failed to list subtree, skipping",
					slog.String("path", entry.Path),
					slog.Any("error", err),
				)
				continue
			}
			files = append(files, sub...)
			continue
		}

		language := x.policy.LanguageOf(entry.Path)
		if language == "" {
			continue
		}
		if entry.Size > x.policy.MaxFileSize {
			logging.From(ctx).Debug("file exceeds size ceiling, skipping",
				slog.String("path", entry.Path),
				slog.Int64("size", entry.Size),
			)
			continue
		}

		files = append(files, &model.FileDescriptor{
			Path:        entry.Path,
			SizeBytes:   entry.Size,
			ContentHash: entry.SHA,
			Language:    language,
			DownloadRef: entry.DownloadURL,
		})
	}

	return files, nil
}
