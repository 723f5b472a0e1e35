package supabase

// Schema is the DDL for the tables this package reads and writes.
// PostgREST cannot run DDL, so apply it through the Supabase SQL
// editor or psql before pointing the engine at a fresh project.
const Schema = `
create table if not exists celebrities (
    id             text primary key,
    name           text not null,
    category       text not null,
    bio            text not null default '',
    primary_handle text not null default '',
    known_manager  text not null default '',
    node_ids       jsonb not null default '[]',
    access_score   integer not null default 0,
    created_at     timestamptz not null,
    updated_at     timestamptz not null
);

create table if not exists nodes (
    id                    text primary key,
    celebrity_id          text not null references celebrities (id) on delete cascade,
    person_name           text not null,
    relationship_type     text not null,
    role                  text not null default '',
    why_warm              text not null default '',
    channels              jsonb not null default '[]',
    relationship_strength integer not null default 0,
    mutual_connections    integer not null default 0,
    interaction_frequency integer not null default 0,
    last_activity         timestamptz,
    created_at            timestamptz not null,
    updated_at            timestamptz not null
);

create index if not exists nodes_celebrity_id_idx on nodes (celebrity_id);

create table if not exists edges (
    celebrity_id text not null,
    source_key   text not null,
    target_key   text not null,
    strength     integer not null,
    primary key (celebrity_id, source_key, target_key)
);

create table if not exists outreach (
    id                text primary key,
    celebrity_id      text not null,
    node_id           text not null,
    recipient_name    text not null,
    channel_type      text not null,
    channel_handle    text not null default '',
    channel_public    boolean not null default true,
    subject_line      text not null,
    message_text      text not null,
    value_proposition text not null default '',
    hop_label         text not null,
    status            text not null,
    created_at        timestamptz not null,
    updated_at        timestamptz not null
);

create index if not exists outreach_celebrity_id_idx on outreach (celebrity_id);

create table if not exists snapshot_versions (
    celebrity_id  text not null,
    version       integer not null,
    checksum      text not null,
    node_count    integer not null default 0,
    edge_count    integer not null default 0,
    pruned_count  integer not null default 0,
    access_score  integer not null default 0,
    built_at      timestamptz not null,
    build_trigger text not null default '',
    primary key (celebrity_id, version)
);
`
