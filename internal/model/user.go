package model

// AdminUsername is the protected directory entry. It is seeded before the
// first request is served and can never be deleted. Directory credentials
// are opaque strings compared by exact match; there is no update path,
// only create and delete.
const AdminUsername = "admin"
