package v1

// BasePath is the prefix of the key catalog API
const BasePath = "/api/v1/textseal"

// FilesPath is the prefix under which the served directory is exposed
const FilesPath = "/files"
