// Package naming renders user-supplied output-name templates into
// platform-safe file paths.
//
// # Templates
//
// Templates contain %placeholder% tokens (case-insensitive) that are
// substituted with metadata of the media item being named:
//
//	fields := naming.FieldsFromPost(post)
//	name := naming.Render("%author_name% - %media_id%", fields)
//
// Available placeholders: %description%, %author_id%, %author_name%,
// %media_height%, %media_width%, %media_id%, %mod_time%, %country_code%,
// %url%. Unrecognized tokens are left untouched and an empty render
// falls back to "_".
//
// # Sanitization
//
// Characters that are illegal in file names are replaced with
// visually similar full-width Unicode look-alikes, so no metadata is
// dropped from the name: "a/b" becomes "a／b". Windows gets the full
// <>:"/\|?* treatment, other platforms only the path separator.
//
// # Collisions and galleries
//
// PadUntilFree resolves name collisions by inserting numeric "_NN"
// suffixes before the extension. IndexedName appends the per-image
// index suffix used by photo galleries.
package naming
