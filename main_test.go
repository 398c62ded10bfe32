package main

import (
	"reflect"
	"testing"

	"fightkokaton/game"
)

func TestEmbeddedConfigMatchesDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, game.DefaultConfig()) {
		t.Errorf("config.yaml drifted from DefaultConfig:\n got %+v\nwant %+v", cfg, game.DefaultConfig())
	}
}
