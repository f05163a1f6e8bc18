// Package track invokes the repository CLI to register module tracks.
//
// One invocation per module: `<tool> track --add id=<id> update_to=<zip>
// changelog=`, run synchronously from the configured working directory with
// both output streams captured. The changelog argument is a deliberate empty
// placeholder; the repository CLI fills changelogs in during sync.
package track
