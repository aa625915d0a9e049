package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"img2pdf/config"
	"img2pdf/state"
)

const outputExt = ".pdf"

// buildOutputPath returns the output file path. An explicit output argument
// wins (getting the extension appended when missing), otherwise the name is
// derived from the source via either the default scheme or the user template,
// cleaned up and optionally transliterated, and placed in the working
// directory.
func buildOutputPath(srcName, output string, count int, env *state.LocalEnv) (string, error) {
	if len(output) > 0 {
		if !strings.EqualFold(filepath.Ext(output), outputExt) {
			output += outputExt
		}
		return filepath.Abs(output)
	}

	outDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	if env.Cfg.Document.OutputNameTemplate == "" {
		return filepath.Join(outDir, buildDefaultFileName(srcName, env)), nil
	}

	expandedName, err := expandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Document.OutputNameTemplate, srcName, count, env)
	if err != nil || expandedName == "" {
		// fallback to default name if template expansion failed
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return filepath.Join(outDir, buildDefaultFileName(srcName, env)), nil
	}

	return assemblePathWithSubdirs(outDir, filepath.FromSlash(expandedName), env), nil
}

func buildDefaultFileName(srcName string, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(srcName), filepath.Ext(srcName))
	return cleanPathSegment(baseName, env) + outputExt
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into a full output
// path, cleaning and transliterating segments as needed.
func assemblePathWithSubdirs(outDir, expandedName string, env *state.LocalEnv) string {
	pathSegments := splitAndCleanPath(expandedName)
	if len(pathSegments) == 0 {
		return filepath.Join(outDir, buildDefaultFileName(expandedName, env))
	}

	fileName := cleanPathSegment(pathSegments[len(pathSegments)-1], env) + outputExt
	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)

	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}

	dirParts = append(dirParts, fileName)
	return filepath.Join(dirParts...)
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
		path = head
	}

	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
