// Package module reads Magisk module metadata out of packaged zip archives.
//
// A proper module package carries the installer marker entries
// (META-INF/com/google/android/updater-script and update-binary) plus a
// module.prop file of key=value lines at the archive root. Inspect validates
// the markers, parses module.prop, and returns the metadata record; only the
// id key gates registration, the rest is informational.
package module
