package icons

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/Captaln/bp-control/config"
	"github.com/Captaln/bp-control/internal/transformation"
	"github.com/Captaln/bp-control/internal/types"
	"github.com/apex/log"
)

var (
	ErrSourceMissing = errors.New("source image not found")
	ErrDecode        = errors.New("error loading image")
)

// Store is the subset of storage.StorageService the updater needs.
type Store interface {
	Exists(path string) (bool, error)
	DirExists(path string) (bool, error)
	EnsureDir(path string) (bool, error)
	ReadImageBuffer(path string) ([]byte, error)
	WriteImageBuffer(path string, data []byte) error
}

type Updater struct {
	config *config.Config
	store  Store
}

func NewUpdater(cfg *config.Config, store Store) *Updater {
	return &Updater{
		config: cfg,
		store:  store,
	}
}

// Run loads the source once, refreshes every mipmap folder that exists and
// writes the web icon. Nothing is written when the source is missing or
// cannot be decoded.
func (u *Updater) Run() (*types.Report, error) {
	img, err := u.loadSource()
	if err != nil {
		return nil, err
	}
	report := &types.Report{
		SourceSize: transformation.SizeOf(img),
		Folders:    []types.FolderResult{},
		Skipped:    []string{},
	}
	log.WithField("size", report.SourceSize).Info("loaded source image")

	log.Info("updating android icons")
	for _, target := range config.MipmapSizes {
		result, skipped, err := u.updateFolder(img, target)
		if err != nil {
			return report, err
		}
		if skipped {
			report.Skipped = append(report.Skipped, target.Folder)
			continue
		}
		report.Folders = append(report.Folders, *result)
	}

	log.Info("saving for web")
	if err := u.saveWebIcon(img, report); err != nil {
		return report, err
	}

	log.Info("icon update complete")
	return report, nil
}

func (u *Updater) loadSource() (image.Image, error) {
	path := u.config.SourceImagePath
	ok, err := u.store.Exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w at %s", ErrSourceMissing, path)
	}
	buffer, err := u.store.ReadImageBuffer(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	img, _, err := transformation.Decode(buffer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, nil
}

func (u *Updater) updateFolder(img image.Image, target types.MipmapTarget) (*types.FolderResult, bool, error) {
	folderPath := filepath.Join(u.config.AndroidResDir(), target.Folder)
	logctx := log.WithFields(log.Fields{
		"folder": target.Folder,
		"size":   target.Size,
	})

	ok, err := u.store.DirExists(folderPath)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		logctx.WithField("path", folderPath).Warn("directory does not exist, skipping")
		return nil, true, nil
	}

	resized, err := transformation.ForceResize(img, target.Size)
	if err != nil {
		return nil, false, err
	}
	iconBytes, err := transformation.EncodePNG(resized)
	if err != nil {
		return nil, false, err
	}

	result := &types.FolderResult{Folder: target.Folder, Size: target.Size}
	// The round icon is the square one, unmasked; the foreground layer too.
	names := make([]string, 0, len(config.LauncherIcons)+1)
	names = append(names, config.LauncherIcons...)
	names = append(names, config.ForegroundIcon)
	for _, name := range names {
		targetPath := filepath.Join(folderPath, name)
		if err := u.store.WriteImageBuffer(targetPath, iconBytes); err != nil {
			return nil, false, err
		}
		logctx.WithField("path", targetPath).Info("saved")
		result.Files = append(result.Files, targetPath)
	}

	background, err := transformation.SolidFill(target.Size, config.BackgroundColor)
	if err != nil {
		return nil, false, err
	}
	backgroundBytes, err := transformation.EncodePNG(background)
	if err != nil {
		return nil, false, err
	}
	bgPath := filepath.Join(folderPath, config.BackgroundIcon)
	if err := u.store.WriteImageBuffer(bgPath, backgroundBytes); err != nil {
		return nil, false, err
	}
	logctx.WithField("path", bgPath).Debug("saved background")
	result.Files = append(result.Files, bgPath)

	return result, false, nil
}

func (u *Updater) saveWebIcon(img image.Image, report *types.Report) error {
	publicDir := u.config.PublicDir()
	created, err := u.store.EnsureDir(publicDir)
	if err != nil {
		return err
	}
	if created {
		log.WithField("path", publicDir).Info("created directory")
	}
	report.PublicDirCreated = created

	thumb, err := transformation.Thumbnail(img, config.WebIconMaxSize)
	if err != nil {
		return err
	}
	thumbBytes, err := transformation.EncodePNG(thumb)
	if err != nil {
		return err
	}
	webIconPath := filepath.Join(publicDir, config.WebIcon)
	if err := u.store.WriteImageBuffer(webIconPath, thumbBytes); err != nil {
		return err
	}
	report.WebIconPath = webIconPath
	report.WebIconSize = transformation.SizeOf(thumb)
	log.WithFields(log.Fields{
		"path": webIconPath,
		"size": report.WebIconSize,
	}).Info("saved web icon")
	return nil
}
