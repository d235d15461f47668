/*
The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides two main ways of responding to an HTTP request:
- rendering JSON data
- writing an error state

A single Responder suffices for an application:
configure it once with how responses should look and log,
then hand each request's particulars to Json or Err through Fn functional options.
*/
package resp
