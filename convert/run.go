// Package convert implements the convert command: collecting images from
// files, directories, archives or a stored session and assembling them into a
// single PDF document.
package convert

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"img2pdf/archive"
	"img2pdf/convert/pdf"
	"img2pdf/gallery"
	"img2pdf/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	session := cmd.String("session")
	if cmd.Args().Len() == 0 && len(session) == 0 {
		return errors.New("no input source has been specified")
	}

	env.Overwrite = cmd.Bool("overwrite")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	ForceZipEncoding(cmd.String("force-zip-cp"), env, log)

	log.Info("Processing starting", zap.Strings("sources", cmd.Args().Slice()), zap.String("session", session))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	list := gallery.NewList(&env.Cfg.Document.Images)

	var srcName string
	if len(session) > 0 {
		store, err := gallery.OpenStore(env.Cfg.Sessions.StorePath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Load(session, list); err != nil {
			return err
		}
		srcName = session
	} else {
		if err := Import(ctx, cmd.Args().Slice(), list, log); err != nil {
			return err
		}
		srcName = cmd.Args().Get(0)
	}

	if list.Len() == 0 {
		return errors.New("no images were found in specified sources")
	}

	return generate(ctx, list, srcName, cmd.String("output"), log)
}

// Import fills the list from the given source arguments in order.
func Import(ctx context.Context, sources []string, list *gallery.List, log *zap.Logger) error {
	for _, src := range sources {
		if err := process(ctx, src, list, log); err != nil {
			return err
		}
	}
	return nil
}

// ForceZipEncoding resolves an IANA character set name for decoding non UTF-8
// file names in archives. Unknown names are logged and ignored.
func ForceZipEncoding(cp string, env *state.LocalEnv, log *zap.Logger) {
	if len(cp) == 0 {
		return
	}
	enc, err := ianaindex.IANA.Encoding(cp)
	if err != nil {
		log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		return
	}
	env.CodePage = enc
	n, _ := ianaindex.IANA.Name(enc)
	log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
}

// process imports all images from a single source argument which may name an
// image file, a directory or a zip archive with an optional path inside.
func process(ctx context.Context, src string, list *gallery.List, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))
		if len(head) == 0 {
			break
		}

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s)", src)
			}
			return processDir(ctx, head, list, log)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s)", head)
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			inner := ""
			if head != src {
				if rel, err := filepath.Rel(head, src); err == nil && rel != "." {
					inner = filepath.ToSlash(rel)
				}
			}
			return processArchive(ctx, head, inner, list, log)
		}

		if len(tail) != 0 {
			return fmt.Errorf("input source was not found (%s)", src)
		}

		data, err := os.ReadFile(head)
		if err != nil {
			return fmt.Errorf("unable to read %s: %w", head, err)
		}
		addImage(list, filepath.Base(head), data, log)
		return nil
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir imports all images found under dir recursively. Files are
// visited in natural sort order ("page2" before "page10") so scanner output
// named without zero padding keeps its intended sequence.
func processDir(ctx context.Context, dir string, list *gallery.List, log *zap.Logger) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	sort.Sort(natural.StringSlice(paths))

	count := list.Len()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		addImage(list, trimPathPrefix(path, dir), data, log)
	}
	if list.Len() == count {
		log.Debug("Nothing to import", zap.String("dir", dir))
	}
	return nil
}

// processArchive imports all images from the archive found under pathIn
// prefix, in natural order of their names inside the archive.
func processArchive(ctx context.Context, path, pathIn string, list *gallery.List, log *zap.Logger) error {
	type entry struct {
		name string
		file *zip.File
	}
	var entries []entry

	cp := state.EnvFromContext(ctx).CodePage

	err := archive.Walk(path, pathIn, func(archivePath string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := f.FileHeader.Name
		if cp != nil && f.FileHeader.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(name); err == nil {
				name = n
			} else {
				cn, _ := ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", cn), zap.String("path", name), zap.Error(err))
			}
		}
		entries = append(entries, entry{name: name, file: f})
		return nil
	})
	if err != nil {
		return fmt.Errorf("unable to process archive: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return natural.Less(entries[i].name, entries[j].name) })

	count := list.Len()
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := e.file.Open()
		if err != nil {
			log.Warn("Skipping file in archive", zap.String("archive", path), zap.String("file", e.name), zap.Error(err))
			continue
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			log.Warn("Skipping file in archive", zap.String("archive", path), zap.String("file", e.name), zap.Error(err))
			continue
		}
		addImage(list, e.name, data, log)
	}
	if list.Len() == count {
		log.Debug("Nothing to import", zap.String("archive", path))
	}
	return nil
}

// addImage adds data to the list, logging and dropping anything the list
// rejects. Non-image files in directories and archives are expected and only
// worth a debug line, other failures get a warning.
func addImage(list *gallery.List, name string, data []byte, log *zap.Logger) {
	item, err := list.Add(name, data)
	if err != nil {
		if !filetype.IsImage(data) {
			log.Debug("Skipping file, not recognized as image", zap.String("file", name))
		} else {
			log.Warn("Skipping file", zap.String("file", name), zap.Error(err))
		}
		return
	}
	log.Debug("Imported image", zap.String("file", name), zap.String("type", item.MediaType), zap.Int64("size", item.Size()))
}

// generate assembles the collected list and writes the document out.
func generate(ctx context.Context, list *gallery.List, srcName, output string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	outputName, err := buildOutputPath(srcName, output, list.Len(), env)
	if err != nil {
		return err
	}

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if dir := filepath.Dir(outputName); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create output directory: %w", err)
		}
	}

	gen := pdf.NewGenerator(&env.Cfg.Document, log)
	res, err := gen.Generate(ctx, list.Items(), func(percent float64) {
		log.Debug("Assembling document", zap.Float64("percent", percent))
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputName, res.Data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	log.Info("Document written",
		zap.String("file", outputName),
		zap.Int("placed", res.Placed),
		zap.Int("skipped", res.Skipped),
		zap.Int("pages", res.Pages))

	// Store conversion result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s", filepath.Base(outputName)), outputName)
	}
	return nil
}

// isArchiveFile sniffs file content for the zip signature, file extension is
// never trusted.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false, err
	}
	kind, err := filetype.Match(head[:n])
	if err != nil {
		return false, err
	}
	return kind.Extension == "zip", nil
}

// trimPathPrefix returns path relative to prefix without a leading separator.
func trimPathPrefix(path, prefix string) string {
	rel, err := filepath.Rel(prefix, path)
	if err != nil || rel == "." {
		return filepath.Base(path)
	}
	return rel
}
