// Package storage keeps the address book in a sqlite file.
//
// Save replaces the stored book inside one transaction, so a failed save
// leaves the previous contents in place. Load validates every stored record
// again before returning it.
//
// Example:
//
//	store, err := storage.Open(ctx, cfg.DataPath)
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//	if err := store.Save(ctx, b.AllPersons()); err != nil {
//		return err
//	}
package storage
