package logging

import (
	"strconv"

	"github.com/fyrsmithlabs/zinspector/internal/config"
	"go.uber.org/zap"
)

// Secret logs a config.Secret as its length only.
func Secret(key string, val config.Secret) zap.Field {
	if !val.IsSet() {
		return zap.String(key, "")
	}
	return zap.String(key, "[REDACTED:"+strconv.Itoa(len(val.Value()))+"]")
}

// ObjectID is the field for a tree object identifier.
func ObjectID(id string) zap.Field { return zap.String("object.id", id) }

// Kind is the field for a tree object kind.
func Kind(kind string) zap.Field { return zap.String("object.kind", kind) }

// Path is the field for a file system path.
func Path(path string) zap.Field { return zap.String("path", path) }
