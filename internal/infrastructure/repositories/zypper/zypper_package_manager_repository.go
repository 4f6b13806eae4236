package zypper

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/package-assistant/internal/domain/entities"
	"github.com/rios0rios0/package-assistant/internal/domain/repositories"
	"github.com/rios0rios0/package-assistant/internal/infrastructure/repositories/packagemanager"
)

const (
	managerName        = "zypper"
	listUpdatesCommand = "zypper --xmlout lu"

	updateElement       = "update"
	nameAttribute       = "name"
	editionAttribute    = "edition"
	oldEditionAttribute = "edition-old"
)

// PackageManagerRepository implements repositories.PackageManagerRepository for zypper.
type PackageManagerRepository struct {
	*packagemanager.Base
}

// NewPackageManagerRepository creates the zypper backend on top of the shared base.
func NewPackageManagerRepository(base *packagemanager.Base) repositories.PackageManagerRepository {
	return &PackageManagerRepository{Base: base}
}

func (it *PackageManagerRepository) Name() string { return managerName }

// CheckUpdate lists the available updates. A failing zypper run is reported
// as an error, never as "no updates".
func (it *PackageManagerRepository) CheckUpdate(ctx context.Context) ([]entities.PackageUpdateItem, error) {
	output, err := it.Commands().Run(ctx, entities.ShellCommand{
		Line: listUpdatesCommand,
		Kind: entities.CommandKindZypper,
	})
	if err != nil {
		return nil, err
	}

	items, err := ParseUpdates(strings.NewReader(output))
	if err != nil {
		return nil, err
	}

	logger.Debugf("[zypper] Found %d update(s)", len(items))
	return items, nil
}

// ParseUpdates reads the output of `zypper --xmlout lu` and returns one item
// per update element carrying a non-empty name.
func ParseUpdates(reader io.Reader) ([]entities.PackageUpdateItem, error) {
	decoder := xml.NewDecoder(reader)
	items := make([]entities.PackageUpdateItem, 0)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrMalformedXML, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != updateElement {
			continue
		}

		item := updateItem(start.Attr)
		if item.Name != "" {
			items = append(items, item)
		}
	}
}

func updateItem(attrs []xml.Attr) entities.PackageUpdateItem {
	var item entities.PackageUpdateItem
	for _, attr := range attrs {
		switch attr.Name.Local {
		case nameAttribute:
			item.Name = attr.Value
		case editionAttribute:
			item.NewVersion = attr.Value
		case oldEditionAttribute:
			item.OldVersion = attr.Value
		}
	}
	return item
}
