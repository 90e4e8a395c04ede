package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/coindash/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// highLevelKey is the storage key for the best 1-based level reached
const highLevelKey = "highLevel"

// KeyValueStore is the slice of gdata.Manager persistence relies on.
type KeyValueStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store KeyValueStore

// InitPersistence opens the on-disk store for appName
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("failed to open store %s: %w", appName, err)
	}
	store = m
	return nil
}

// UseStore swaps the backing store. A nil store disables persistence.
func UseStore(s KeyValueStore) {
	store = s
}

// LoadHighLevel returns the stored best level, or 1 when nothing is stored.
func LoadHighLevel() int {
	if store == nil {
		return 1
	}

	data, err := store.LoadItem(highLevelKey)
	if err != nil {
		log.Printf("Warning: Could not load high level: %v", err)
		return 1
	}
	if len(data) == 0 {
		return 1
	}

	var level int
	if err := json.Unmarshal(data, &level); err != nil {
		log.Printf("Warning: Could not parse saved high level: %v", err)
		return 1
	}
	return max(level, 1)
}

// SaveHighLevel writes level as the stored best. Failures are logged and
// the in-memory best stays authoritative for the session.
func SaveHighLevel(level int) {
	if store == nil {
		return
	}

	data, err := json.Marshal(level)
	if err != nil {
		log.Printf("Warning: Could not serialize high level: %v", err)
		return
	}
	if err := store.SaveItem(highLevelKey, data); err != nil {
		log.Printf("Warning: Could not save high level: %v", err)
	}
}

// UpdateHighLevel records the current level as the best once it exceeds
// the stored one.
func UpdateHighLevel(e *ecs.ECS) {
	entry, ok := components.HighLevel.First(e.World)
	if !ok {
		return
	}
	high := components.HighLevel.Get(entry)

	current := currentLevelNumber(e)
	if current <= high.Best {
		return
	}
	high.Best = current
	SaveHighLevel(current)
}

// DisplayedHighLevel is what the HUD shows: the stored best or the current
// level, whichever is higher.
func DisplayedHighLevel(e *ecs.ECS) int {
	best := 1
	if entry, ok := components.HighLevel.First(e.World); ok {
		best = components.HighLevel.Get(entry).Best
	}
	return max(best, currentLevelNumber(e))
}
