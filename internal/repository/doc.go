// Package repository is the task persistence adapter. It owns a key-value
// client and a table name, converts tasks to and from the store's attribute
// maps, and exposes the two access patterns the rest of the system uses:
// write a whole task, and read one back by its global id.
package repository
