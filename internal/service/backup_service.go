package service

import (
	"fmt"
	"os"

	"habitquest/internal/repository"
)

// BackupService exports and imports the persisted state blob.
type BackupService struct {
	repo *repository.StateRepository
}

// NewBackupService creates a new backup service
func NewBackupService(repo *repository.StateRepository) *BackupService {
	return &BackupService{repo: repo}
}

// Export writes the stored blob to the given file. Exporting an empty store
// is an error so a backup file always holds real state.
func (s *BackupService) Export(path string) error {
	payload, found, err := s.repo.Raw()
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("nothing to export: no saved state")
	}

	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// Import replaces the stored blob with the contents of the given file. The
// file must hold a valid state blob; existing state is overwritten.
func (s *BackupService) Import(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	return s.repo.SaveRaw(string(payload))
}
