package v1

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MGTheTrain/textseal/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// errOutsideRoot is returned for request paths that climb above the served directory
var errOutsideRoot = errors.New("path escapes the served directory")

// FileHandler defines the interface for serving a directory
type FileHandler interface {
	Index(ctx *gin.Context)
	ServeFile(ctx *gin.Context)
}

type fileHandler struct {
	root   string
	logger logger.Logger
}

// NewFileHandler creates a FileHandler serving the files below root
func NewFileHandler(root string, logger logger.Logger) FileHandler {
	return &fileHandler{
		root:   filepath.Clean(root),
		logger: logger,
	}
}

// Index answers the root path
func (handler *fileHandler) Index(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Hello World!")
}

// ServeFile returns the file at the requested path, or an HTML listing when the path is a directory
func (handler *fileHandler) ServeFile(ctx *gin.Context) {
	requested := ctx.Param("path")

	target, err := handler.resolve(requested)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "Not Found"})
			return
		}
		handler.logger.Error("Failed to stat ", target, ": ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	if !info.IsDir() {
		handler.logger.Debug("Serving ", target)
		ctx.File(target)
		return
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		handler.logger.Error("Failed to list ", target, ": ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(renderListing(requested, entries)))
}

// resolve maps a request path onto the served directory
func (handler *fileHandler) resolve(requested string) (string, error) {
	for _, segment := range strings.Split(requested, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %s", errOutsideRoot, requested)
		}
	}
	return filepath.Join(handler.root, filepath.FromSlash(path.Clean("/"+requested))), nil
}

func renderListing(requested string, entries []fs.DirEntry) string {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	base := path.Join(FilesPath, path.Clean("/"+requested))
	var b strings.Builder
	b.WriteString("<html><body><ul>")
	for _, entry := range entries {
		name := entry.Name()
		href := path.Join(base, url.PathEscape(name))
		fmt.Fprintf(&b, "<li><a href=\"%s\">%s</a></li>", html.EscapeString(href), html.EscapeString(name))
	}
	b.WriteString("</ul></body></html>")
	return b.String()
}
