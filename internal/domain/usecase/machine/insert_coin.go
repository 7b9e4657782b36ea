package machine

import (
	"context"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
)

// InsertCoin puts one coin into the tray.
// Invalid denominations are rejected and leave the tray unchanged.
func (m *Machine) InsertCoin(_ context.Context, d entity.Denomination) error {
	if err := m.tray.Insert(d); err != nil {
		m.logger.Debug("Rejected coin", map[string]any{
			"denomination": int64(d),
		})
		return err
	}

	m.logger.Debug("Coin inserted", map[string]any{
		"denomination": d.Value(),
		"tray_total":   m.tray.Total(),
		"available":    m.AvailableBalance(),
	})
	return nil
}
