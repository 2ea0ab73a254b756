// Package maven downloads jars from a Maven repository so they can serve as
// fact sources.
package maven

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
)

const (
	DefaultRepoURL = "https://repo1.maven.org/maven2"
	EnvRepoURL     = "MAVEN_REPO_URL"

	// Scheme prefixes a coordinate used as a fact source.
	Scheme = "maven:"
)

var log = commonlog.GetLogger("jbind.maven")

// Coordinate identifies one artifact.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Classifier string
	Version    string
}

// ParseCoordinate parses groupId:artifactId:version or
// groupId:artifactId:classifier:version.
func ParseCoordinate(coord string) (Coordinate, error) {
	parts := strings.Split(coord, ":")
	for _, p := range parts {
		if p == "" {
			return Coordinate{}, fmt.Errorf("invalid Maven coordinate: %s", coord)
		}
	}
	switch len(parts) {
	case 3:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}, nil
	case 4:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Classifier: parts[2], Version: parts[3]}, nil
	default:
		return Coordinate{}, fmt.Errorf("invalid Maven coordinate: %s (expected groupId:artifactId:version or groupId:artifactId:classifier:version)", coord)
	}
}

func (c Coordinate) String() string {
	if c.Classifier != "" {
		return strings.Join([]string{c.GroupID, c.ArtifactID, c.Classifier, c.Version}, ":")
	}
	return strings.Join([]string{c.GroupID, c.ArtifactID, c.Version}, ":")
}

// JarName returns the file name of the artifact's jar.
func (c Coordinate) JarName() string {
	if c.Classifier != "" {
		return fmt.Sprintf("%s-%s-%s.jar", c.ArtifactID, c.Version, c.Classifier)
	}
	return fmt.Sprintf("%s-%s.jar", c.ArtifactID, c.Version)
}

// Dir returns the repository-relative directory holding the artifact.
func (c Coordinate) Dir() string {
	return strings.ReplaceAll(c.GroupID, ".", "/") + "/" + c.ArtifactID + "/" + c.Version
}

// Fetcher downloads jars into a local cache laid out like a Maven repository.
type Fetcher struct {
	RepoURL    string
	CacheDir   string
	httpClient *http.Client
}

// NewFetcher returns a fetcher for repoURL, falling back to $MAVEN_REPO_URL
// and then Maven Central when it is empty.
func NewFetcher(repoURL, cacheDir string) *Fetcher {
	if repoURL == "" {
		repoURL = os.Getenv(EnvRepoURL)
	}
	if repoURL == "" {
		repoURL = DefaultRepoURL
	}
	return &Fetcher{
		RepoURL:    strings.TrimSuffix(repoURL, "/"),
		CacheDir:   cacheDir,
		httpClient: &http.Client{},
	}
}

// DefaultCacheDir is jbind/maven below the user cache directory.
func DefaultCacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "jbind", "maven"), nil
}

func (f *Fetcher) JarURL(c Coordinate) string {
	return f.RepoURL + "/" + c.Dir() + "/" + c.JarName()
}

// Jar returns the path of the cached jar for c, downloading it first if needed.
func (f *Fetcher) Jar(ctx context.Context, c Coordinate) (string, error) {
	destPath := filepath.Join(f.CacheDir, filepath.FromSlash(c.Dir()), c.JarName())
	if _, err := os.Stat(destPath); err == nil {
		return destPath, nil
	}

	url := f.JarURL(c)
	log.Infof("downloading %s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", c, err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", c, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: HTTP %d for %s", c, resp.StatusCode, url)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	// a partial download must never be mistaken for a cached jar
	tmp, err := os.CreateTemp(filepath.Dir(destPath), c.JarName()+".*")
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", destPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), destPath); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return destPath, nil
}

// Resolve replaces every maven: source with the path of its cached jar.
// Other sources are returned unchanged.
func (f *Fetcher) Resolve(ctx context.Context, sources []string) ([]string, error) {
	out := make([]string, len(sources))
	for i, src := range sources {
		coord, ok := strings.CutPrefix(src, Scheme)
		if !ok {
			out[i] = src
			continue
		}
		c, err := ParseCoordinate(coord)
		if err != nil {
			return nil, err
		}
		path, err := f.Jar(ctx, c)
		if err != nil {
			return nil, err
		}
		out[i] = path
	}
	return out, nil
}
