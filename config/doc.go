// Package config decodes the two JSON record shapes spec.md §6
// describes — job configuration and communication (countdown plus
// bounty hunters) — rejecting unknown fields and matching field names
// case-insensitively, mirroring the Python original's
// ForbidExtraFieldsModel/CaseInsensitiveModel pair in
// original_source/src/falcon/models.py.
package config
