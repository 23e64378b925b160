// Package testdb provides helpers for PostgreSQL integration tests.
//
// Tests run only when a database URL is configured; otherwise they skip.
// Each test works inside its own transaction, which is rolled back when the
// test completes, so tests can run in parallel against one database
// without seeing each other's rows.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t) // skips without DATABASE_URL
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        items := postgres.NewItemStore(tx, store.TaskKeyAttribute, nil)
//	        ...
//	    })
//	}
package testdb
