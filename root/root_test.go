package root

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewPrefersEnv(t *testing.T) {
	os.Setenv("BAGELBOT_TEST_ROOT", "/srv/bagel")
	defer os.Unsetenv("BAGELBOT_TEST_ROOT")

	r := New("/opt/default", "BAGELBOT_TEST_UNSET", "BAGELBOT_TEST_ROOT")
	if r.Root() != "/srv/bagel" {
		t.Errorf("New() root == %#v, expected /srv/bagel", r.Root())
	}
	if r := New("/opt/default", "BAGELBOT_TEST_UNSET"); r.Root() != "/opt/default" {
		t.Errorf("New() root == %#v, expected /opt/default", r.Root())
	}
}

func TestPath(t *testing.T) {
	r := Root("/srv/bagel")
	if p := r.Path("config/bagelbot.yml"); p != filepath.Join("/srv/bagel", "config", "bagelbot.yml") {
		t.Errorf("Path == %#v", p)
	}
	if p := r.Path("/etc/bagelbot.yml"); p != "/etc/bagelbot.yml" {
		t.Errorf("absolute Path == %#v", p)
	}
}
