package background

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Masterminds/semver"
)

// VersionChecker periodically logs when a newer release is published on GitHub
type VersionChecker struct {
	current *semver.Version
	url     string
	tick    chan time.Time
	client  http.Client
}

type release struct {
	TagName string `json:"tag_name"`
}

// NewVersionCheck returns a VersionChecker comparing releases of repo against current
func NewVersionCheck(current string, repo string) (*VersionChecker, error) {
	sem, err := semver.NewVersion(current)
	if err != nil {
		return nil, err
	}
	tick := make(chan time.Time, 1)
	tick <- time.Now()

	return &VersionChecker{
		current: sem,
		url:     fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", repo),
		tick:    tick,
		client: http.Client{
			Timeout: time.Second * 5,
		},
	}, nil
}

func (v *VersionChecker) String() string {
	return "VersionChecker"
}

// Serve satisfies suture.Service
func (v *VersionChecker) Serve(haltCtx context.Context) error {
	log.Println("[VersionChecker] starting checker loop")

	ticker := time.NewTicker(time.Hour * 6)
	defer ticker.Stop()

	for {
		select {
		case <-haltCtx.Done():
			log.Println("[VersionChecker] stopping checker loop")
			return nil
		case <-ticker.C:
			v.check(haltCtx)
		case <-v.tick:
			v.check(haltCtx)
		}
	}
}

func (v *VersionChecker) check(ctx context.Context) {
	log.Println("[VersionChecker] checking for new version")
	latest, err := v.getLatest(ctx)
	if err != nil {
		log.Printf("[VersionChecker] error checking for new version: %+v\n", err)
		return
	}
	if v.isNewer(latest) {
		log.Printf("[VersionChecker] new version found: %s\n", latest.String())
	}
}

func (v *VersionChecker) isNewer(latest *semver.Version) bool {
	return latest.GreaterThan(v.current)
}

func (v *VersionChecker) getLatest(ctx context.Context) (*semver.Version, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.url, nil)
	if err != nil {
		return nil, err
	}

	res, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", res.Status)
	}

	var r release
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	return semver.NewVersion(r.TagName)
}
