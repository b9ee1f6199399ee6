package sqllex

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"runtime"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vippsas/sqllex/sqlparser/mysql"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

type Options struct {
	mysql.Options `yaml:",inline"`

	// Concurrency is how many files are lexed at once; 0 means GOMAXPROCS.
	Concurrency int `yaml:"concurrency"`
	// PartialResults makes Include return the statements it could lex along
	// with Collection.Errors instead of failing.
	PartialResults bool `yaml:"-"`
}

// File is the lexed content of one *.sql file.
type File struct {
	// Path is the path inside the filesystem it was found in.
	Path       string
	Statements []Statement
}

// Collection is the result of lexing every *.sql file of some filesystems.
type Collection struct {
	Files  []File
	Errors []sqldocument.Error
}

// Include walks the filesystems in lexical order and lexes every file
// matching *.sql, skipping hidden files and directories. The same content
// found twice is an error. Files are lexed concurrently; the result is in
// walk order regardless.
func Include(ctx context.Context, opts Options, fslst ...fs.FS) (Collection, error) {
	type source struct {
		path string
		text string
	}
	var sources []source

	// protect against the same file being included twice, possibly through
	// two filesystems
	hashes := make(map[[32]byte]string)
	for fidx, fsys := range fslst {
		err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			// Skip over any hidden directories; in particular .git
			if strings.HasPrefix(path, ".") || strings.Contains(path, "/.") {
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(path, ".sql") {
				return nil
			}
			buf, err := fs.ReadFile(fsys, path)
			if err != nil {
				return err
			}
			pathDesc := fmt.Sprintf("fs[%d]:%s", fidx, path)
			hash := sha256.Sum256(buf)
			if existing, ok := hashes[hash]; ok {
				return errors.Errorf("file %s has exact same contents as %s (possibly in different filesystems)",
					pathDesc, existing)
			}
			hashes[hash] = pathDesc
			sources = append(sources, source{path: path, text: string(buf)})
			return nil
		})
		if err != nil {
			return Collection{}, err
		}
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	if opts.DigestSink != nil {
		// a DigestSink sees one statement at a time
		limit = 1
	}

	files := make([]File, len(sources))
	fileErrors := make([][]sqldocument.Error, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fileOpts := opts.Options
			fileOpts.File = sqldocument.FileRef(src.path)
			fileOpts.Logger = log.WithField("file", src.path)

			statements, err := Split(src.text, fileOpts)
			var lexErrs LexErrors
			switch {
			case errors.As(err, &lexErrs):
				fileErrors[i] = lexErrs.Errors
			case err != nil:
				return errors.Wrapf(err, "lexing %s", src.path)
			}
			files[i] = File{Path: src.path, Statements: statements}
			fileOpts.Logger.WithField("statements", len(statements)).Debug("lexed file")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Collection{}, err
	}

	result := Collection{Files: files}
	for _, errs := range fileErrors {
		result.Errors = append(result.Errors, errs...)
	}
	if len(result.Errors) > 0 && !opts.PartialResults {
		return Collection{}, LexErrors{Errors: result.Errors}
	}
	return result, nil
}

func MustInclude(ctx context.Context, opts Options, fsys ...fs.FS) Collection {
	result, err := Include(ctx, opts, fsys...)
	if err != nil {
		panic(err)
	}
	return result
}

// DigestGroup is the statements of a collection that share a digest.
type DigestGroup struct {
	Hash       string
	Text       string
	Statements []Statement
}

// Digests groups the statements by digest hash, most frequent first.
// Statements lexed without a digest are left out.
func (c Collection) Digests() []DigestGroup {
	index := make(map[string]int)
	var groups []DigestGroup
	for _, f := range c.Files {
		for _, stmt := range f.Statements {
			if stmt.DigestHash == "" {
				continue
			}
			i, ok := index[stmt.DigestHash]
			if !ok {
				i = len(groups)
				index[stmt.DigestHash] = i
				groups = append(groups, DigestGroup{Hash: stmt.DigestHash, Text: stmt.DigestText})
			}
			groups[i].Statements = append(groups[i].Statements, stmt)
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Statements) > len(groups[j].Statements)
	})
	return groups
}

// Fingerprint hashes the digests of all statements in order. Two
// collections with the same statement shapes in the same files have the
// same fingerprint, whatever their literals, whitespace and comments.
func (c Collection) Fingerprint() string {
	hasher := sha256.New()
	for _, f := range c.Files {
		hasher.Write([]byte(f.Path + "\n"))
		for _, stmt := range f.Statements {
			hasher.Write([]byte(stmt.DigestHash + "\n"))
		}
	}
	// 6 bytes is plenty to tell apart the versions of one code base
	return hex.EncodeToString(hasher.Sum(nil)[:6])
}
