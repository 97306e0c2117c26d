// SPDX-License-Identifier: GPL-3.0-only

package models

// AllModels lists every table handed to AutoMigrate.
var AllModels []any
