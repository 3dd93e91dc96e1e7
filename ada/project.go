package ada

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/adatags/inspector/repository"
)

// sourceSuffixes are the conventional GNAT file extensions for Ada
// compilation units: specs (.ads), bodies (.adb), and the occasional
// plain .ada file from older toolchains.
var sourceSuffixes = []string{".ads", ".adb", ".ada"}

// Source is one discovered Ada compilation unit under a project root.
type Source struct {
	URL  string
	Name string
}

// ProjectScanner walks a directory tree locating Ada source files,
// using afs so the same scanner works against local disk, archives, or
// any other storage scheme afs has a backend for.
type ProjectScanner struct {
	fs afs.Service
}

// NewProjectScanner returns a scanner backed by the default afs
// service (local, memory, and any registered remote schemes).
func NewProjectScanner() *ProjectScanner {
	return &ProjectScanner{fs: afs.New()}
}

// DiscoverSources recursively lists every Ada source file under root.
func (s *ProjectScanner) DiscoverSources(ctx context.Context, root string) ([]Source, error) {
	objects, err := s.fs.List(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("ada: listing %s: %w", root, err)
	}
	var sources []Source
	for _, obj := range objects {
		if obj.IsDir() {
			if obj.URL() == root {
				continue
			}
			nested, err := s.DiscoverSources(ctx, obj.URL())
			if err != nil {
				return nil, err
			}
			sources = append(sources, nested...)
			continue
		}
		if !hasAdaSuffix(obj.Name()) {
			continue
		}
		sources = append(sources, Source{URL: obj.URL(), Name: obj.Name()})
	}
	return sources, nil
}

// ReadSource downloads the content of one discovered source.
func (s *ProjectScanner) ReadSource(ctx context.Context, src Source) ([]byte, error) {
	data, err := s.fs.DownloadWithURL(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("ada: reading %s: %w", src.URL, err)
	}
	return data, nil
}

func hasAdaSuffix(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range sourceSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// ProjectInfo describes the project enclosing a scanned directory: its
// name (preferring a GNAT *.gpr project file, falling back to VCS/
// directory-derived detection) and, when the tree sits inside a git
// checkout, the repository's origin URL.
type ProjectInfo struct {
	Name   string
	Root   string
	Origin string
}

// DetectProjectInfo resolves ProjectInfo for root: it first looks for a
// GNAT *.gpr file directly under root, then falls back to the generic
// repository/VCS detector for the project name and git origin.
func DetectProjectInfo(ctx context.Context, fs afs.Service, root string) (*ProjectInfo, error) {
	info := &ProjectInfo{Root: root}

	detector := repository.New()
	if repo, err := detector.DetectRepository(root); err == nil {
		info.Origin = repo.Origin
		if repo.Info != nil {
			info.Name = repo.Info.Name
		}
		if repo.Root != "" {
			info.Root = repo.Root
		}
	}

	objects, err := fs.List(ctx, root)
	if err != nil {
		return info, fmt.Errorf("ada: listing %s: %w", root, err)
	}
	for _, obj := range objects {
		if obj.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(obj.Name()), ".gpr") {
			info.Name = strings.TrimSuffix(obj.Name(), path.Ext(obj.Name()))
			break
		}
	}
	if info.Name == "" {
		info.Name = path.Base(strings.TrimRight(root, "/"))
	}
	return info, nil
}
