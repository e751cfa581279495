package config

import "testing"

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadFailsFastWithoutSenderEmail(t *testing.T) {
	_, err := Load(env(map[string]string{}))
	if err == nil {
		t.Fatal("expected error when SENDER_EMAIL is unset")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	c, err := Load(env(map[string]string{"SENDER_EMAIL": "[email protected]"}))
	if err != nil {
		t.Fatal(err)
	}
	if c.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", c.HTTPAddr)
	}
	if c.CacheCapacity != 1024 {
		t.Errorf("CacheCapacity = %d", c.CacheCapacity)
	}
}

func TestLoadRejectsInvalidCacheCapacity(t *testing.T) {
	_, err := Load(env(map[string]string{
		"SENDER_EMAIL":   "[email protected]",
		"CACHE_CAPACITY": "not-a-number",
	}))
	if err == nil {
		t.Fatal("expected error for invalid CACHE_CAPACITY")
	}
}

func TestLoadHonorsExplicitValues(t *testing.T) {
	c, err := Load(env(map[string]string{
		"SENDER_EMAIL":   "[email protected]",
		"HTTP_ADDR":      ":9090",
		"CACHE_CAPACITY": "256",
		"LOG_LEVEL":      "DEBUG",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if c.HTTPAddr != ":9090" || c.CacheCapacity != 256 {
		t.Errorf("unexpected config: %+v", c)
	}
}
