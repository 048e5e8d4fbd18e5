package commands

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"daycare/backend/internal/pkg/repository/postgresql"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "CREATE TYPE \"user_role\" AS ENUM",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('ADMIN', 'EDUCATOR', 'PARENT');`,
	},
	{
		Index:       2,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            email text not null unique,
            password text not null,
            role user_role,
            first_name text,
            last_name text,
            phone text,
            center_id int,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       3,
		Description: "Create admin user with email: admin@daycare.local, password: 1",
		Query: `
        INSERT INTO users(email, role, password, first_name, last_name)
        SELECT 'admin@daycare.local', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2', 'Admin', 'Admin'
        WHERE NOT EXISTS (SELECT email FROM users WHERE email = 'admin@daycare.local');
        `,
	},
	{
		Index:       4,
		Description: "Create table: centers",
		Query: `
        CREATE TABLE IF NOT EXISTS centers (
            id serial primary key,
            name text not null,
            description text,
            address text,
            phone text,
            email text,
            open_time time,
            close_time time,
            capacity int,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       5,
		Description: "Create table: classrooms",
		Query: `
        CREATE TABLE IF NOT EXISTS classrooms (
            id serial primary key,
            name text not null,
            description text,
            age_group_min int,
            age_group_max int,
            capacity int,
            center_id int references centers(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       6,
		Description: "Create table: children",
		Query: `
        CREATE TABLE IF NOT EXISTS children (
            id serial primary key,
            first_name text not null,
            last_name text not null,
            birth_date date,
            gender text,
            allergies text,
            emergency_contact_name text,
            emergency_contact_phone text,
            classroom_id int references classrooms(id),
            center_id int references centers(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       7,
		Description: "Create table: attendance",
		Query: `
        CREATE TABLE IF NOT EXISTS attendance (
            id serial primary key,
            child_id int not null references children(id),
            attendance_date date not null,
            check_in_time time,
            check_out_time time,
            status text,
            check_in_notes text,
            check_out_notes text,
            is_active boolean not null default true,
            center_id int references centers(id),
            check_in_by int references users(id),
            check_out_by int references users(id),
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       8,
		Description: "One active attendance row per child per day",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS attendance_child_day_key
        ON attendance (child_id, attendance_date)
        WHERE is_active;`,
	},
	{
		Index:       9,
		Description: "Attendance lookups by date and child",
		Query: `
        CREATE INDEX IF NOT EXISTS attendance_date_idx ON attendance (attendance_date);
        CREATE INDEX IF NOT EXISTS attendance_child_idx ON attendance (child_id);`,
	},
	{
		Index:       10,
		Description: "Add center foreign key to users",
		Query: `
        ALTER TABLE users
        ADD CONSTRAINT users_center_fk FOREIGN KEY (center_id) REFERENCES centers(id);`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
