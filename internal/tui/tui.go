package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

type TUI struct {
	services  *service.ClientServices
	navigator *Navigator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, navigator *Navigator, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, navigator: navigator, buildInfo: buildInfo, logger: log}
}

// Run shows the home page until the user quits or ctx is cancelled. The home
// page sends an anonymous user to the login page.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.navigator, PageHome, t.buildInfo, t.logger)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.navigator.Bind(p.Send)
	defer t.navigator.Bind(nil)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
