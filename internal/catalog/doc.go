// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

/*
Package catalog loads the fashion item catalog and partitions it into the
category buckets the recommendation engine scores against.

# Lifecycle

A catalog is loaded once into an immutable Snapshot:

	snap, err := catalog.Load(path, catalog.DefaultRules())
	if err != nil {
	    // StartupFailure: refuse to serve
	}

Snapshots are never mutated. A reload produces a new Snapshot, and consumers
swap the pointer atomically. Readers holding
the old Snapshot keep a consistent view until they finish.

# Buckets

Partition assigns items to the Top, Bottom, Footwear and Accessory buckets
using keyword rules over masterCategory and articleType. Buckets may overlap:
accessory keywords are substring-matched against every article type, so an
apparel "Bowling Shirt" lands in both Top and Accessory. With
Rules.TopIncludesAccessories set, a jacket listed under accessories does too.

Every bucket carries the item's feature text alongside the item, in catalog
order:

	lower(masterCategory subCategory articleType usage baseColour season)

# CSV Format

The loader maps columns by header name, so column order is free:

	id,gender,masterCategory,subCategory,articleType,baseColour,season,year,usage,productDisplayName,link
*/
package catalog
