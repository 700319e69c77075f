package schema

const schema = `CREATE TABLE notes (
	id BIGINT PRIMARY KEY AUTO_INCREMENT,
	title TEXT,
	content TEXT,
	updatedAt TIMESTAMP,
	createdAt TIMESTAMP
)`

const dropSchema = `DROP TABLE notes`
