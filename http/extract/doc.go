/*
Package extract derives typed, validated values from an incoming HTTP request.

An Extractor decodes a request's query string, URL-encoded body or multipart
body into a pointer to a struct. That struct ought to leverage the appropriate
struct tags for performing two tasks.
First, matching keys in the request to fields on the struct
("schema" tags for query strings and forms, "multipart" tags for multipart bodies).
Second, validating the decoded data meets requirements ("validate" tags).

The Query, Form and Multipart handler wrappers run an Extractor ahead of
application code, routing any failure through the configured ErrorHandler so
handlers only ever see values that decoded and validated cleanly.
The parade of errors that may propagate from extraction is translated to
forms sentinel errors in order to provide a consistent interface
for issues that arise across encoding types.
*/
package extract
