// datagen holds the shared plumbing for the e-commerce dataset generation
// tools.
//
// A datagen.Source produces generated records one at a time, returning io.EOF
// once it is exhausted. Sources decouple record production from record
// consumption: the same fake.SessionSource can be drained into numbered JSON
// chunk files for a batch run, or pushed record by record into a Kafka topic
// for a streaming consumer. The writers in writer.go own the on-disk contract
// of a dataset run - pretty-printed UTF-8 JSON arrays, with large collections
// split into zero-padded numbered chunks so downstream loaders never have to
// hold one huge file in memory.
//
// The actual generation logic (categories, products, users, transactions and
// sessions, plus the summary statistics of a run) lives in the fake
// sub-package. Command-line entry points wrapping all of this are under
// usecase/ and cmd/.

package datagen
